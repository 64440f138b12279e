// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/tournament/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var coinPrecision = decimal.New(types.Coin, 0)

// FormatAmountValue2Display 将传输、计算的amount值格式化成显示值
func FormatAmountValue2Display(amount int64) string {
	return decimal.New(amount, 0).Div(coinPrecision).StringFixed(4)
}

// FormatAmountDisplay2Value 将显示、输入的amount值格式化成传输、计算值，最多 8 位小数
func FormatAmountDisplay2Value(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "parse %s", amount)
	}
	value := d.Mul(coinPrecision)
	if !value.Equal(value.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "precision %s", amount)
	}
	if !types.CheckAmount(value.IntPart()) {
		return 0, errors.Wrapf(types.ErrAmount, "range %s", amount)
	}
	return value.IntPart(), nil
}

// GetAmountValue 将命令行中的amount值转换成int64
func GetAmountValue(cmd *cobra.Command, field string) (int64, error) {
	amount, _ := cmd.Flags().GetString(field)
	return FormatAmountDisplay2Value(amount)
}

// DecodeAccount 账户余额格式化
func DecodeAccount(acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:    acc.Addr,
		Owner:   acc.Owner,
		Balance: FormatAmountValue2Display(acc.GetBalance()),
	}
}
