package model

// AdminUsername is the single administrative identity. User management is
// gated on this exact username, not on a role flag.
const AdminUsername = "admin"

// DefaultAdminPassword seeds the credentials document when it is first
// created. Passwords are stored and compared verbatim.
const DefaultAdminPassword = "senha123"

// Credentials maps username to plaintext password. It is persisted whole,
// as a single JSON object.
type Credentials map[string]string
