// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package blob_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shinobidex/fichas-api/internal/platform/blob"
)

/*
TestObjectKey checks the character and jutsu key shapes.
*/
func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	assert.Equal(t, "187_34_9_120_1700000000000.png",
		blob.ObjectKey("", "187.34.9.120", "png", at))

	assert.Equal(t, "jutsu_187_34_9_120_1700000000000.jpg",
		blob.ObjectKey("jutsu", "187.34.9.120", ".jpg", at))

	assert.Equal(t, "unknown_1700000000000.webp",
		blob.ObjectKey("", "unknown", "webp", at))
}
