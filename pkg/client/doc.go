// Package client provides a Go SDK for the ING Bank (CZ) internet banking API.
//
// The internet banking frontend talks to a private JSON API ("genoma") that is
// authenticated by the browser session. This SDK reuses such a session: copy the
// value of the Cookie request header from the browser's developer tools and hand
// it to New. The client never logs in or refreshes the session on its own; once
// the cookie expires, calls fail with an *APIError (typically 401) or with
// ErrHTMLResponse when the bank serves its login page instead; IsUnauthorized
// recognizes both.
//
// # Quick Start
//
//	c, err := client.New(cookie)
//	if err != nil {
//	    // the cookie has no genoma-session-id attribute
//	}
//	holder, err := c.GetClient(ctx)
//	products, err := c.ListProducts(ctx)
//
// # Movements
//
// Movements (transactions) are listed per product. From is required; To
// defaults to the current date at the time of the call, Limit to 25 and
// Offset to 0:
//
//	movements, err := c.ListMovements(ctx, productID, &client.MovementsOptions{
//	    From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
//	})
//	movement, err := c.GetMovement(ctx, movementID)
//
// # Payloads
//
// Responses are returned exactly as the bank sends them, decoded into the
// generic JSON representation (map[string]any, []any, json.Number, string,
// bool, nil). No schema is imposed; interpreting the shape is up to the caller.
package client
