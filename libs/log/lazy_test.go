package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanorpc/nanorpc/libs/log"
)

func TestLazySprintf(t *testing.T) {
	l := log.NewLazySprintf("%s=%d", "count", 10)
	assert.Equal(t, "count=10", l.String())
}

func TestLazyBody(t *testing.T) {
	body := []byte(`{"action":"account_balance","account":"xrb_1"}`)

	assert.Equal(t, string(body), log.NewLazyBody(body, 0).String())
	assert.Equal(t, string(body), log.NewLazyBody(body, len(body)).String())
	assert.Equal(t, `{"action"...`, log.NewLazyBody(body, 9).String())
}
