// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillis(t *testing.T) {
	assert.Equal(t, int64(0), toMillis(time.Time{}))
	assert.True(t, fromMillis(0).IsZero())

	at := time.Date(2026, 2, 3, 4, 5, 6, 7_000_000, time.UTC)
	assert.True(t, at.Equal(fromMillis(toMillis(at))))

	assert.Nil(t, nullableMillis(nil))
	assert.Nil(t, fromNullMillis(sql.NullInt64{}))
	got := fromNullMillis(sql.NullInt64{Int64: toMillis(at), Valid: true})
	require.NotNil(t, got)
	assert.True(t, at.Equal(*got))
}

func TestEncodeList(t *testing.T) {
	raw, err := encodeList[string](nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	list, err := decodeList[string](`["a","b"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, list)

	_, err = decodeList[string](`{not json`)
	assert.ErrorIs(t, err, ErrScanningRow)
}
