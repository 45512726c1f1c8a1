package stripe_test

import (
	"testing"
	"time"

	"github.com/digiri/giriloyo-batik/pkg/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"
)

func TestVerifyWebhookSignature(t *testing.T) {
	const secret = "whsec_test"

	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","client_reference_id":"GRLYO-1-AAAAAA","payment_status":"paid"}}}`)
	client := stripe.NewStripeClient("sk_test", secret)

	t.Run("Valid Signature", func(t *testing.T) {
		// Arrange
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    secret,
			Timestamp: time.Now(),
		})

		// Act
		event, err := client.VerifyWebhookSignature(signed.Payload, signed.Header)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "checkout.session.completed", string(event.Type))
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		// Arrange
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    "whsec_other",
			Timestamp: time.Now(),
		})

		// Act
		_, err := client.VerifyWebhookSignature(signed.Payload, signed.Header)

		// Assert
		assert.Error(t, err)
	})

	t.Run("Missing Header", func(t *testing.T) {
		_, err := client.VerifyWebhookSignature(payload, "")

		assert.Error(t, err)
	})
}
