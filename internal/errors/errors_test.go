package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drive-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "drive not found",
			expected: "NOT_FOUND: drive not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "drive is fully upgraded",
			expected: "FAILED_PRECONDITION: drive is fully upgraded",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("drive not found").
		WithMeta("drive_id", "drive_1").
		WithMeta("position", 4)

	s.Equal("drive_1", err.Meta["drive_id"])
	s.Equal(4, err.Meta["position"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load drive")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load drive", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("INTERNAL: failed to load drive: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("record not found").WithMeta("drive_id", "drive_9")
	wrapped := errors.Wrapf(baseErr, "drive %s not found", "drive_9")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("drive drive_9 not found", wrapped.Message)
	s.Equal("drive_9", wrapped.Meta["drive_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("stat missing").WithMeta("stat", "暴击")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "unknown substat")

	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Equal("unknown substat", wrapped.Message)
	s.Equal("暴击", wrapped.Meta["stat"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
	s.True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestGetCode() {
	testCases := []struct {
		name     string
		err      error
		expected errors.Code
	}{
		{"nil", nil, errors.CodeOK},
		{"custom", errors.FailedPrecondition("full"), errors.CodeFailedPrecondition},
		{"wrapped custom", errors.Wrap(errors.AlreadyExists("dup"), "create"), errors.CodeAlreadyExists},
		{"plain", fmt.Errorf("boom"), errors.CodeInternal},
		{"canceled", context.Canceled, errors.CodeCanceled},
		{"deadline", fmt.Errorf("ping: %w", context.DeadlineExceeded), errors.CodeDeadlineExceeded},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, errors.GetCode(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestGetMetaAndMessage() {
	err := errors.NotFound("user facing").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Equal("value", errors.GetMeta(wrapped)["key"])
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))

	s.Equal("user facing", errors.GetMessage(err))
	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestDescribe() {
	inner := errors.NotFoundf("drive with ID %s not found", "drive_1")
	wrapped := errors.Wrap(errors.Wrap(inner, "failed to get drive"), "failed to upgrade drive")

	s.Equal("failed to upgrade drive: failed to get drive: drive with ID drive_1 not found", errors.Describe(wrapped))
	s.Equal("failed to list drives: dial tcp: refused",
		errors.Describe(errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to list drives")))
	s.Empty(errors.Describe(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeFailedPrecondition, 400},
		{errors.CodeNotFound, 404},
		{errors.CodeAlreadyExists, 409},
		{errors.CodeInternal, 500},
		{errors.CodeUnimplemented, 501},
		{errors.CodeUnavailable, 503},
		{errors.Code("SOMETHING_ELSE"), 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}
