// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
)

// CheckPathExists 检查文件夹是否存在
func CheckPathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeDir 创建目录
func MakeDir(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}
