package lambda

import (
	"log"
	"os"
)

var lambdaDebug = os.Getenv("LAMBDA_DEBUG") != ""

var debugLog = log.New(os.Stderr, "lambda: ", 0)

func debugf(format string, args ...any) {
	if lambdaDebug {
		debugLog.Printf(format, args...)
	}
}
