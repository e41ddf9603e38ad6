// Package lib holds support code outside the request layers: the contact
// notification job (asynq), the Resend email client and small helpers.
package lib
