package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// Transport is a mock type for the Transport type.
type Transport struct {
	mock.Mock
}

// Post provides a mock function with given fields: ctx, body
func (_m *Transport) Post(ctx context.Context, body []byte) ([]byte, error) {
	ret := _m.Called(ctx, body)

	if len(ret) == 0 {
		panic("no return value specified for Post")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []byte) ([]byte, error)); ok {
		return rf(ctx, body)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []byte) []byte); ok {
		r0 = rf(ctx, body)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	if rf, ok := ret.Get(1).(func(context.Context, []byte) error); ok {
		r1 = rf(ctx, body)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTransport creates a new instance of Transport. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewTransport(t interface {
	mock.TestingT
	Cleanup(func())
},
) *Transport {
	mock := &Transport{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
