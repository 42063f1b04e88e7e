package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrCommunication(t *testing.T) {
	assert.Equal(t, "unable to communicate with node", ErrCommunication{}.Error())

	cause := errors.New("connection refused")
	err := fmt.Errorf("account_balance: %w", ErrCommunication{Source: cause})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unable to communicate with node: connection refused")
}

func TestIsProtocolError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrProtocol{Message: "Wallet not found"})

	assert.True(t, IsProtocolError(err, "Wallet not found"))
	assert.False(t, IsProtocolError(err, "Bad account number"))
	assert.False(t, IsProtocolError(errors.New("Wallet not found"), "Wallet not found"))
	assert.Equal(t, "Bad account number", ErrProtocol{Message: "Bad account number"}.Error())
}

func TestDetailErrorsUnwrap(t *testing.T) {
	cause := errors.New("cause")
	for _, err := range []error{
		ErrInvalidAddress{Addr: "x", Source: cause},
		ErrMarshalRequest{Source: cause},
		ErrCreateRequest{Source: cause},
		ErrFailedRequest{Source: cause},
		ErrReadResponse{Source: cause, Description: "body"},
		ErrUnmarshalResponse{Source: cause},
	} {
		assert.ErrorIs(t, err, cause, err.Error())
	}
}
