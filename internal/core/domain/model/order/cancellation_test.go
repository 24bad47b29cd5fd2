package order_test

import (
	"testing"
	"time"

	"foodadmin/internal/core/domain/model/order"
	"foodadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionFromAction(t *testing.T) {
	t.Run("should parse the admin API actions", func(t *testing.T) {
		testCases := []struct {
			action   string
			expected order.Decision
		}{
			{"approved", order.DecisionApproved},
			{"Approved", order.DecisionApproved},
			{"APPROVED", order.DecisionApproved},
			{"rejected", order.DecisionRejected},
			{" rejected ", order.DecisionRejected},
		}

		for _, tc := range testCases {
			t.Run(tc.action, func(t *testing.T) {
				decision, err := order.DecisionFromAction(tc.action)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, decision)
			})
		}
	})

	t.Run("should reject anything else", func(t *testing.T) {
		for _, action := range []string{"", "pending", "approve", "cancel"} {
			decision, err := order.DecisionFromAction(action)

			require.Error(t, err, "action: %q", action)
			assert.ErrorIs(t, err, order.ErrInvalidCancellationDecision)
			assert.Equal(t, order.DecisionUnknown, decision)
		}
	})
}

func TestDecision_Validate(t *testing.T) {
	t.Run("should validate Pending, Approved, Rejected", func(t *testing.T) {
		for _, d := range []order.Decision{order.DecisionPending, order.DecisionApproved, order.DecisionRejected} {
			require.NoError(t, d.Validate())
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, d := range []order.Decision{order.DecisionUnknown, order.Decision(-1), order.Decision(7)} {
			err := d.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "Pending", order.DecisionPending.String())
	assert.Equal(t, "Approved", order.DecisionApproved.String())
	assert.Equal(t, "Rejected", order.DecisionRejected.String())
	assert.Equal(t, "Unknown", order.DecisionUnknown.String())
	assert.Equal(t, "Unknown", order.Decision(42).String())
}

func TestNewCancellationRequest(t *testing.T) {
	t.Run("should create a pending request", func(t *testing.T) {
		requestedAt := time.Now()

		request, err := order.NewCancellationRequest("delivery window missed", requestedAt)

		require.NoError(t, err)
		assert.Equal(t, "delivery window missed", request.Reason())
		assert.Equal(t, requestedAt, request.RequestedAt())
		assert.Equal(t, order.DecisionPending, request.Decision())
		assert.True(t, request.IsPending())
		assert.Empty(t, request.AdminResponse())
		assert.Nil(t, request.DecidedAt())
	})

	t.Run("should require a reason", func(t *testing.T) {
		for _, reason := range []string{"", "  ", "\n"} {
			_, err := order.NewCancellationRequest(reason, time.Now())

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestRestoreCancellationRequest(t *testing.T) {
	t.Run("should restore a decided request", func(t *testing.T) {
		decidedAt := time.Now()

		request, err := order.RestoreCancellationRequest(
			"changed my mind", decidedAt.Add(-time.Hour), order.DecisionRejected, "kitchen already started", &decidedAt)

		require.NoError(t, err)
		assert.Equal(t, order.DecisionRejected, request.Decision())
		assert.Equal(t, "kitchen already started", request.AdminResponse())
		assert.False(t, request.IsPending())
		require.NotNil(t, request.DecidedAt())
		assert.Equal(t, decidedAt, *request.DecidedAt())
	})

	t.Run("should reject an invalid persisted decision", func(t *testing.T) {
		_, err := order.RestoreCancellationRequest("reason", time.Now(), order.DecisionUnknown, "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
