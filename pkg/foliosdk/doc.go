// Package foliosdk holds the wire types of the folio HTTP API and a small
// client for it.
//
//	client := foliosdk.NewSDKClient("http://localhost:8080")
//	sess, err := client.Login(ctx, "alice", "correct-horse")
//	if err != nil {
//		if foliosdk.IsStatus(err, http.StatusTooManyRequests) {
//			// back off for (*APIError).RetryAfter seconds
//		}
//		return err
//	}
//	_ = sess.Follow(ctx, "bob@example.com")
//
// Every error response is an *APIError.
package foliosdk
