// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type T struct {
	a int
	b *int
}

func (t *T) Query_Add(in *Int64) (Message, error) {
	result := t.a + *t.b + int(in.Data)
	return &Int64{Data: int64(result)}, nil
}

func (t *T) Query_Fail(in *Int64) (Message, error) {
	return nil, errors.New("fail")
}

func (t *T) Query_Nil(in *Int64) (Message, error) {
	return nil, nil
}

func (t *T) hidden() {}

func TestListMethod(t *testing.T) {
	methods := ListMethod(&T{})
	assert.Equal(t, 3, len(methods))
	_, ok := methods["Query_Add"]
	assert.True(t, ok)
	_, ok = methods["hidden"]
	assert.False(t, ok)
}

func TestCallQueryFunc(t *testing.T) {
	b := 20
	data := &T{10, &b}
	methods := ListMethod(data)
	this := reflect.ValueOf(data)

	reply, err := CallQueryFunc(this, methods["Query_Add"], &Int64{Data: 1})
	require.Nil(t, err)
	assert.Equal(t, int64(31), reply.(*Int64).Data)

	*data.b = 30
	reply, err = CallQueryFunc(this, methods["Query_Add"], &Int64{})
	require.Nil(t, err)
	assert.Equal(t, int64(40), reply.(*Int64).Data)

	_, err = CallQueryFunc(this, methods["Query_Fail"], &Int64{})
	assert.Equal(t, "fail", err.Error())

	_, err = CallQueryFunc(this, methods["Query_Nil"], &Int64{})
	assert.Equal(t, ErrActionNotSupport, err)
}

func TestIsOK(t *testing.T) {
	data := make([]reflect.Value, 2)
	var err interface{}
	data[0] = reflect.ValueOf(&Int64{})
	data[1] = reflect.ValueOf(err)
	assert.Equal(t, reflect.Invalid, data[1].Kind())
	assert.Equal(t, true, IsNilVal(data[1]))
	assert.Equal(t, true, IsOK(data, 2))
	assert.Equal(t, false, IsOK(data, 1))
}
