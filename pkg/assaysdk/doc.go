/*
Package assaysdk provides a client SDK for the assay record service.

The package carries the wire types shared by the HTTP handlers and clients,
typed API errors, and a small Client for calling the service:

	client := assaysdk.NewClient("https://assay.example.com")

	// Register and log in
	_, err := client.SignUp(ctx, assaysdk.SignUpRequest{
		UserID:      "alice@example.com",
		Password:    "...",
		DisplayName: "Alice",
	})
	login, err := client.Login(ctx, "alice@example.com", "...")

	// Authenticated record operations use the session token
	saved, err := client.SaveAssay(ctx, login.Token, req)
	records, err := client.ListAssays(ctx, login.Token)
	detail, err := client.AssayDetail(ctx, login.Token, saved.RecordID)

Failures are returned as *APIError with the service's error code, so callers
can branch with errors.As.
*/
package assaysdk
