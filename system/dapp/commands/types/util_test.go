// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/tournament/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmountValue2Display(t *testing.T) {
	assert.Equal(t, "1.0000", FormatAmountValue2Display(types.Coin))
	assert.Equal(t, "0.0000", FormatAmountValue2Display(0))
	assert.Equal(t, "12.3456", FormatAmountValue2Display(1234560000))
	assert.Equal(t, "0.0000", FormatAmountValue2Display(5))
}

func TestFormatAmountDisplay2Value(t *testing.T) {
	v, err := FormatAmountDisplay2Value("1.5")
	assert.NoError(t, err)
	assert.Equal(t, int64(150000000), v)

	v, err = FormatAmountDisplay2Value("0.00000005")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), v)

	for _, bad := range []string{"", "abc", "0", "-1", "0.000000001", "1e10"} {
		_, err = FormatAmountDisplay2Value(bad)
		assert.Equal(t, types.ErrAmount, errors.Cause(err), bad)
	}
}

func TestDecodeAccount(t *testing.T) {
	res := DecodeAccount(&types.Account{Addr: "a", Owner: "b", Balance: 2 * types.Coin})
	assert.Equal(t, &AccountResult{Addr: "a", Owner: "b", Balance: "2.0000"}, res)
}
