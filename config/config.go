/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package config validates the handful of settings each bridge binary
// derives from its positional CLI arguments, trimmed from golib/config
// down to the one thing that still applies once viper/cobra are gone:
// struct-tag validation via go-playground/validator before the settings
// are used to open a listener or dial a bridge.
package config

import (
	"fmt"

	libval "github.com/go-playground/validator/v10"

	liberr "github.com/Pneumaticat/bridge/errors"
)

const (
	ErrorValidate liberr.CodeError = iota + liberr.MinPkgConfig
)

func init() {
	liberr.RegisterIdFctMessage(liberr.MinPkgConfig, getMessage)
}

func getMessage(code liberr.CodeError) string {
	if code == ErrorValidate {
		return "configuration is invalid"
	}
	return liberr.UnknownMessage
}

// ServerConfig is the bridge server's validated settings.
type ServerConfig struct {
	Port  string `validate:"required,numeric"`
	Mount string `validate:"required,startswith=/"`
}

// ClientConfig is the bridge client's validated settings.
type ClientConfig struct {
	Local      string `validate:"required"`
	BridgeURL  string `validate:"required,url"`
	RemoteHost string `validate:"required"`
	RemotePort string `validate:"required,numeric"`
}

// Validate reports a structured liberr.Error naming every failed
// constraint, or nil if cfg satisfies its validate tags.
func Validate(cfg interface{}) liberr.Error {
	e := ErrorValidate.Error()

	if err := libval.New().Struct(cfg); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		} else {
			for _, fe := range err.(libval.ValidationErrors) {
				e.Add(fmt.Errorf("field %q fails constraint %q", fe.Namespace(), fe.ActualTag()))
			}
		}
	}

	if !e.HasParent() {
		return nil
	}
	return e
}
