package client

import (
	"errors"
	"fmt"
)

// CommunicationMessage is the text of every ErrCommunication.
const CommunicationMessage = "unable to communicate with node"

// ErrCommunication is returned when the node could not be reached or its
// reply could not be read. Source holds the transport error.
type ErrCommunication struct {
	Source error
}

func (e ErrCommunication) Error() string {
	if e.Source == nil {
		return CommunicationMessage
	}
	return fmt.Sprintf("%s: %v", CommunicationMessage, e.Source)
}

func (e ErrCommunication) Unwrap() error {
	return e.Source
}

// ErrProtocol is returned when the node answered with an error member.
// Error returns the node's message verbatim.
type ErrProtocol struct {
	Message string
}

func (e ErrProtocol) Error() string {
	return e.Message
}

// IsProtocolError reports whether err is an ErrProtocol carrying msg.
func IsProtocolError(err error, msg string) bool {
	var perr ErrProtocol
	return errors.As(err, &perr) && perr.Message == msg
}

type ErrInvalidAddress struct {
	Addr   string
	Source error
}

func (e ErrInvalidAddress) Error() string {
	return fmt.Sprintf("invalid address: %s: %v", e.Addr, e.Source)
}

func (e ErrInvalidAddress) Unwrap() error {
	return e.Source
}

type ErrMarshalRequest struct {
	Source error
}

func (e ErrMarshalRequest) Error() string {
	return fmt.Sprintf("failed to marshal request: %v", e.Source)
}

func (e ErrMarshalRequest) Unwrap() error {
	return e.Source
}

type ErrCreateRequest struct {
	Source error
}

func (e ErrCreateRequest) Error() string {
	return fmt.Sprintf("failed to create request: %v", e.Source)
}

func (e ErrCreateRequest) Unwrap() error {
	return e.Source
}

type ErrFailedRequest struct {
	Source error
}

func (e ErrFailedRequest) Error() string {
	return fmt.Sprintf("failed request: %v", e.Source)
}

func (e ErrFailedRequest) Unwrap() error {
	return e.Source
}

type ErrReadResponse struct {
	Source      error
	Description string
}

func (e ErrReadResponse) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("failed to read response: %v", e.Source)
	}

	return fmt.Sprintf("failed to read response: %s: %v", e.Description, e.Source)
}

func (e ErrReadResponse) Unwrap() error {
	return e.Source
}

// ErrUnexpectedStatus is returned for a non-2xx reply whose body is not JSON.
type ErrUnexpectedStatus struct {
	StatusCode int
	Body       string
}

func (e ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type ErrUnmarshalResponse struct {
	Source      error
	Description string
}

func (e ErrUnmarshalResponse) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("failed to unmarshal response: %v", e.Source)
	}

	return fmt.Sprintf("failed to unmarshal response: %s: %v", e.Description, e.Source)
}

func (e ErrUnmarshalResponse) Unwrap() error {
	return e.Source
}
