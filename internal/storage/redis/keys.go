package redis

// Key prefix for all application data
const keyPrefix = "prontuario"

// recordsKey returns the Redis key holding the whole records collection
func recordsKey() string {
	return keyPrefix + ":records"
}

// usersKey returns the Redis key holding the whole credentials mapping
func usersKey() string {
	return keyPrefix + ":users"
}
