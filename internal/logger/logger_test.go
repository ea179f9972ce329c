package logger

import (
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"
)

func TestPrepareRedactsAndCopies(t *testing.T) {
	t.Setenv("SERVICE_NAME", "portfolio-blog")
	in := Fields{"provider": "github", "code": "oauth-code", "Authorization": "Bearer x"}

	out := prepare(in)

	assert.Equal(t, "github", out["provider"])
	assert.Equal(t, redacted, out["code"])
	assert.Equal(t, redacted, out["Authorization"])
	assert.Equal(t, "portfolio-blog", out["service_name"])
	// caller's map untouched
	assert.Equal(t, "oauth-code", in["code"])
	assert.NotContains(t, in, "service_name")
}

func TestPrepareKeepsExplicitServiceName(t *testing.T) {
	t.Setenv("SERVICE_NAME", "from-env")
	assert.Equal(t, "worker", prepare(Fields{"service_name": "worker"})["service_name"])

	t.Setenv("SERVICE_NAME", "")
	assert.NotContains(t, prepare(nil), "service_name")
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{in: "", want: slog.InfoLevel},
		{in: "DEBUG", want: slog.DebugLevel},
		{in: " warn ", want: slog.WarnLevel},
		{in: "error", want: slog.ErrorLevel},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.want, parseLevel(testCase.in), testCase.in)
	}
}

func TestInitFromEnv(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "")
	InitFromEnv("TEST_LOG_LEVEL", "debug")
	InfoWithFields("logger initialized", Fields{"level": "debug"})

	t.Setenv("TEST_LOG_LEVEL", "error")
	InitFromEnv("TEST_LOG_LEVEL", "debug")
	Init("")
}
