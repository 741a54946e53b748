package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWith_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWith("debug", "json", &buf)
	t.Cleanup(func() { InitWith("info", "text", &bytes.Buffer{}) })

	Entity(4, "door").Debug("opened")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "opened", line["msg"])
	assert.Equal(t, "door", line["name"])
	assert.Equal(t, float64(4), line["entity"])
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
}

func TestInitWith_BadLevelFallsBackToInfo(t *testing.T) {
	InitWith("loud", "", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	_, ok := Log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
