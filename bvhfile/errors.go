// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvhfile

import (
	"errors"
	"fmt"
)

const packageName = "bvhfile: "

// ErrClosed is returned by operations on a Writer or Reader that has
// already been closed.
var ErrClosed = textErr("closed")

var errUnexpectedState = textErr("unexpected state")

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
