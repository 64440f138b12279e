// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrNotFound not found
	ErrNotFound = errors.New("ErrNotFound")
	// ErrDecode decode error
	ErrDecode = errors.New("ErrDecode")
	// ErrAmount bad amount
	ErrAmount = errors.New("ErrAmount")
	// ErrNoBalance balance not enough
	ErrNoBalance = errors.New("ErrNoBalance")
	// ErrSendSameToRecv from == to
	ErrSendSameToRecv = errors.New("ErrSendSameToRecv")
	// ErrAccountNotExist account not exist
	ErrAccountNotExist = errors.New("ErrAccountNotExist")
	// ErrAccountExist account already exist
	ErrAccountExist = errors.New("ErrAccountExist")
	// ErrAuthority authority is not the account owner
	ErrAuthority = errors.New("ErrAuthority")
	// ErrInvalidAddress bad address
	ErrInvalidAddress = errors.New("ErrInvalidAddress")
	// ErrSymbolNameNotAllow bad symbol
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	// ErrSign signature check failed
	ErrSign = errors.New("ErrSign")
	// ErrEmpty empty tx
	ErrEmpty = errors.New("ErrEmpty")
	// ErrTxDup tx already executed
	ErrTxDup = errors.New("ErrTxDup")
	// ErrExecNameNotAllow unknown execer
	ErrExecNameNotAllow = errors.New("ErrExecNameNotAllow")
	// ErrActionNotSupport unknown action
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	// ErrMethodReturnType driver method has a bad signature
	ErrMethodReturnType = errors.New("ErrMethodReturnType")
	// ErrLogType unknown receipt log
	ErrLogType = errors.New("ErrLogType")
	// ErrUnRegistedDriver driver not registered
	ErrUnRegistedDriver = errors.New("ErrUnRegistedDriver")
	// ErrQueryNotSupport unknown query
	ErrQueryNotSupport = errors.New("ErrQueryNotSupport")
)
