package session

// Keys of the client-local state. They match the keys the web client keeps in localStorage.
const (
	TokenKey = "access_token"
	ThemeKey = "theme"
)

// AdminRole is the role value the backend assigns to administrators.
const AdminRole = "admin"

// keyringService namespaces keyring entries for this client.
const keyringService = "wallgallery"
