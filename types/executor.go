// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"
)

//ExecutorType 执行器的类型信息，负责交易 payload 和回执日志的解码
type ExecutorType interface {
	GetName() string
	//action 的空结构体
	GetPayload() Message
	//action 名字 -> action ty
	GetTypeMap() map[string]int32
	GetLogMap() map[int32]*LogInfo
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
	//交易执行时需要加锁的地址
	GetLockAddrs(tx *Transaction) []string
	DecodeLog(ty int32, data []byte) (string, Message, error)
	GetExecFuncMap() map[string]reflect.Method
	InitFuncList(list map[string]reflect.Method)
}

//LogInfo 回执日志的类型
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

//ExecutorAction action 结构体需要实现
type ExecutorAction interface {
	GetTy() int32
}

//LockAddrs action 结构体可以实现，返回执行时需要加锁的地址
type LockAddrs interface {
	GetLockAddrs() []string
}

var (
	executorMap = map[string]ExecutorType{}
	executorMu  sync.RWMutex
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType")
	}
	executorMap[exec] = util
}

//LoadExecutorType 获取执行器类型，不存在返回 nil
func LoadExecutorType(exec string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	if e, exist := executorMap[exec]; exist {
		return e
	}
	return nil
}

//ExecTypeBase 执行器类型的公共实现
type ExecTypeBase struct {
	child        ExecutorType
	actionName   map[int32]string
	execFuncList map[string]reflect.Method
}

//SetChild 设置具体的执行器类型
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionName = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionName[ty] = name
	}
}

//InitFuncList 执行器的方法列表
func (base *ExecTypeBase) InitFuncList(list map[string]reflect.Method) {
	base.execFuncList = list
}

//GetExecFuncMap 执行器的方法列表
func (base *ExecTypeBase) GetExecFuncMap() map[string]reflect.Method {
	return base.execFuncList
}

//DecodePayload 解码交易的 action
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	if err := Decode(tx.Payload, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

//DecodePayloadValue 返回 action 名字以及 action 中对应的字段
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	a, ok := action.(ExecutorAction)
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	name, ok := base.actionName[a.GetTy()]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	val := reflect.ValueOf(action).Elem().FieldByName(name)
	if !val.IsValid() || val.Kind() != reflect.Ptr || val.IsNil() {
		return "", nilValue, ErrActionNotSupport
	}
	return name, val, nil
}

//ActionName 交易的 action 名字
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

//GetLockAddrs 交易 action 中涉及的地址
func (base *ExecTypeBase) GetLockAddrs(tx *Transaction) []string {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return nil
	}
	if l, ok := action.(LockAddrs); ok {
		return l.GetLockAddrs()
	}
	return nil
}

//DecodeLog 解码回执日志
func (base *ExecTypeBase) DecodeLog(ty int32, data []byte) (string, Message, error) {
	switch ty {
	case TyLogErr:
		return "LogErr", string(data), nil
	case TyLogTransfer, TyLogGenesisTransfer:
		var r ReceiptAccountTransfer
		if err := Decode(data, &r); err != nil {
			return "", nil, err
		}
		if ty == TyLogTransfer {
			return "LogTransfer", &r, nil
		}
		return "LogGenesisTransfer", &r, nil
	case TyLogAccountCreate:
		var r Account
		if err := Decode(data, &r); err != nil {
			return "", nil, err
		}
		return "LogAccountCreate", &r, nil
	}
	info, ok := base.child.GetLogMap()[ty]
	if !ok {
		return "", nil, ErrLogType
	}
	msg := reflect.New(info.Ty).Interface()
	if err := Decode(data, msg); err != nil {
		return "", nil, err
	}
	return info.Name, msg, nil
}
