// Package blogsdk holds the wire types of the bloggr API together with a
// Go client for it.
//
// The server uses the error types in this package to write its responses,
// so the client and server agree on the shapes by construction:
//
//	c, _ := blogsdk.NewClient("https://bloggr.example")
//	if _, err := c.Login(ctx, "alice", "secret"); err != nil {
//		if blogsdk.StatusOf(err) == http.StatusUnauthorized { ... }
//	}
//	devices, _ := c.Devices(ctx)
//
// The refresh token lives in an HttpOnly cookie, so the client keeps a
// cookie jar and every refresh or device call relies on it.
package blogsdk
