// Package callback implements the receiving side of the platform's Callback
// API: an HTTP handler that confirms the endpoint, verifies the shared
// secret, and dispatches community events to registered handlers.
//
// The platform delivers events as JSON POSTs. A "confirmation" event must be
// answered with the code obtained via groups.getCallbackConfirmationCode;
// every other event is acknowledged with a plain "ok" body once processed.
//
//	rcv := callback.New("a1b2c3", callback.WithSecret("s3cret"))
//	rcv.Handle("message_new", func(ctx context.Context, e callback.Event) error {
//		// e.Object holds the raw event payload
//		return nil
//	})
//
//	http.ListenAndServe(":8080", rcv.Router())
//
// Events without a registered handler are acknowledged and logged, never
// rejected - the platform redelivers anything that is not answered with
// "ok", and an unhandled event type is not worth a redelivery storm.
package callback
