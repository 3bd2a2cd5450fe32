package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/graeme-hill/mathstuff-go/lib"
	"github.com/sirupsen/logrus"
)

func main() {
	echo := flag.Bool("echo", false, "print the parse tree before each result")
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			logrus.WithError(err).Error("reading input")
			continue
		}

		if strings.TrimSpace(line) != "" {
			fmt.Printf("Your input: %s\n", strings.TrimRight(line, "\n"))
			evaluate(line, *echo)
		}

		if err == io.EOF {
			return
		}
	}
}

func evaluate(line string, echo bool) {
	ast, err := lib.Parse(line)
	if err != nil {
		fmt.Printf("Parse error: %v\n", err)
		return
	}
	if echo {
		fmt.Printf("Parse tree: %v\n", ast)
	}
	fmt.Printf("Result: %g\n", ast.Eval())
}
