package requests

// UserDocument is accepted as-is: user documents have no fixed schema.
type UserDocument map[string]interface{}
