package jsoncodec_test

import (
	"fmt"

	c "github.com/Gobd/jsoncodec"
)

type user struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var userCodec = c.ForType[user](
	c.WithDecode[user](func(reg *c.Registry, v any) c.Result[user] {
		name := c.Required[string](reg, v, "name", "Missing name")
		email := c.Check(
			c.Required[string](reg, v, "email", "Missing email"),
			c.Email("Invalid email"))
		return c.Combine(func() user {
			return user{Name: name.Get(), Email: email.Get()}
		}, name, email)
	}),
)

func ExampleDecode() {
	reg := c.NewRegistry(userCodec)

	tree, _ := c.ParseTree([]byte(`{"email": "not-an-email"}`))
	r := c.Decode[user](reg, tree)
	fmt.Println(string(c.RenderErrors(r.Errors())))
	// Output: {"errors":["Missing name","Invalid email"]}
}

func ExampleCheck() {
	ttl := c.Check(c.Valid(-30),
		c.P("TTL must be positive", func(v int) bool { return v > 0 }),
		c.P("TTL must be a multiple of 10", func(v int) bool { return v%10 == 0 }))
	fmt.Println(ttl.Errors())
	// Output: [TTL must be positive]
}

func ExampleEncode() {
	reg := c.NewRegistry(userCodec)

	tree := c.Encode(reg, user{Name: "ok", Email: "test@test.com"})
	b, _ := c.RenderTree(tree)
	fmt.Println(string(b))
	// Output: {"email":"test@test.com","name":"ok"}
}
