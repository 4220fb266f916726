package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayment computes the hex HMAC-SHA256 the gateway attaches to a
// completed payment: HMAC(secret, "<orderID>|<paymentID>").
func SignPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a gateway-issued payment signature. This is the sole
// trust boundary between "gateway asserts completion" and "ledger is
// authoritative", so the comparison is constant time: hmac.Equal over the raw
// digests, never a string compare that can leak the mismatch position.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hmac.Equal(supplied, mac.Sum(nil))
}
