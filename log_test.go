/*
 * log_test.go, part of goAton.
 *
 * Copyright 2024 The goAton authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package aton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type decoErr struct{ deco []string }

func (e *decoErr) Error() string  { return "deco" }
func (e *decoErr) Critical() bool { return true }
func (e *decoErr) Decorate(d string) []string {
	if d != "" {
		e.deco = append(e.deco, d)
	}
	return e.deco
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)
	L().Info("hello", zap.Int("levels", 5))
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
	SetLogger(nil)
	L().Info("ignored")
	assert.Equal(t, 1, logs.Len())
}

func TestErrDecorate(t *testing.T) {
	e := &decoErr{}
	err := ErrDecorate(e, "Caller")
	assert.Equal(t, []string{"Caller"}, e.Decorate(""))
	assert.Same(t, e, err)
	plain := errors.New("plain")
	assert.Equal(t, plain, ErrDecorate(plain, "Caller"))
	assert.Nil(t, ErrDecorate(nil, "Caller"))
}
