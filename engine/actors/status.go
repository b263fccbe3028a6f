package actors

import (
	"sync"

	"nostrbadges/engine/library"
)

var terminateChan chan struct{}

func SetTerminateChan(term chan struct{}) {
	terminateChan = term
}

func GetTerminateChan() chan struct{} {
	return terminateChan
}

var waitGroup = &sync.WaitGroup{}

func GetWaitGroup() *sync.WaitGroup {
	return waitGroup
}

func LogCLI(message interface{}, level int) {
	library.LogCLI(message, level)
}
