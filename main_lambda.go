//go:build lambda

package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	h := &handler{log: newLogger(os.Stderr, DefaultConfig())}
	lambda.Start(h.serve)
}
