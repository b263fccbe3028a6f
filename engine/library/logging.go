package library

import (
	"fmt"
	"runtime/debug"

	"github.com/mborders/logmatic"
)

var logger = logmatic.NewLogger()

func init() {
	logger.SetLevel(logmatic.TRACE)
	logger.ExitOnFatal = true
}

// Logs to the terminal. Level options are: 0 fatal error (stack dump), 1 serious error (stack dump), 2 warning, 3 debug, 4 info, 5 trace (stack dump).
func LogCLI(message interface{}, level int) {
	m := fmt.Sprint(message)
	switch level {
	case 5:
		debug.PrintStack()
		logger.Trace("%v", m)
	case 4:
		logger.Info("%v", m)
	case 3:
		logger.Debug("%v", m)
	case 2:
		logger.Warn("%v", m)
	case 1:
		debug.PrintStack()
		logger.Error("%v", m)
	case 0:
		debug.PrintStack()
		logger.Fatal("%v", m)
	}
}
