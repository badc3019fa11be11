// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	panicTag   = "PANIC"
	flushDelay = 100 * time.Millisecond
)

// hold a logger channel
var (
	lock sync.Mutex
	log  *logger.L
)

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	lock.Lock()
	defer lock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the log channel
func Finalise() {
	lock.Lock()
	defer lock.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string
func Critical(message string) {
	criticalWithCaller(2, "%s", message)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	criticalWithCaller(2, format, arguments...)
}

// Panicf - log the formatted message then panic
func Panicf(format string, arguments ...interface{}) {
	criticalWithCaller(2, format, arguments...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(flushDelay) // to allow logging output
	panic(message)
}

// PanicWithError - final panic including the error text
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	time.Sleep(flushDelay) // to allow logging output
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// prefix the message with the file:line of the caller
func criticalWithCaller(skip int, format string, arguments ...interface{}) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		internalCriticalf(format, arguments...)
		return
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	a = append(a, arguments...)
	internalCriticalf("(%q:%d) "+format, a...)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	lock.Lock()
	defer lock.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
