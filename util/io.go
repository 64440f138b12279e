// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

//ReadFile : read file
func ReadFile(file string) ([]byte, error) {
	fileCont, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read file %s", file)
	}
	return fileCont, nil
}

//ReadTrimmedFile 读取文件并去掉首尾空白，用于读取私钥文件
func ReadTrimmedFile(file string) (string, error) {
	data, err := ReadFile(file)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

//WriteStringToFile : 写入文件，目录不存在时创建，文件权限 0600
func WriteStringToFile(file, content string) (writeLen int, err error) {
	if dir := filepath.Dir(file); !CheckPathExists(dir) {
		if err = MakeDir(dir); err != nil {
			return 0, err
		}
	}
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, errors.Wrapf(err, "open file %s", file)
	}
	defer f.Close()
	return f.WriteString(content)
}
