package registry

// Authentication types accepted by the registry.
const (
	AuthTypeNone                 = "none"
	AuthTypeSas                  = "sas"
	AuthTypeSelfSigned           = "selfSigned"
	AuthTypeCertificateAuthority = "certificateAuthority"
)

// SymmetricKey holds the shared access keys of a module identity.
type SymmetricKey struct {
	PrimaryKey   string `json:"primaryKey,omitempty"`
	SecondaryKey string `json:"secondaryKey,omitempty"`
}

// WithPrimaryKey returns a copy with the primary key set.
func (s SymmetricKey) WithPrimaryKey(key string) SymmetricKey {
	s.PrimaryKey = key
	return s
}

// WithSecondaryKey returns a copy with the secondary key set.
func (s SymmetricKey) WithSecondaryKey(key string) SymmetricKey {
	s.SecondaryKey = key
	return s
}

// AuthMechanism describes how a module authenticates.
type AuthMechanism struct {
	Type         string        `json:"type,omitempty"`
	SymmetricKey *SymmetricKey `json:"symmetricKey,omitempty"`
}

// WithType returns a copy with the auth type set.
func (a AuthMechanism) WithType(authType string) AuthMechanism {
	a.Type = authType
	return a
}

// WithSymmetricKey returns a copy with the symmetric key set.
func (a AuthMechanism) WithSymmetricKey(key SymmetricKey) AuthMechanism {
	a.SymmetricKey = &key
	return a
}

// Module is a module identity as the registry represents it.
// GenerationID is assigned by the service and changes when the identity
// is recreated.
type Module struct {
	ModuleID       string         `json:"moduleId,omitempty"`
	ManagedBy      string         `json:"managedBy,omitempty"`
	DeviceID       string         `json:"deviceId,omitempty"`
	GenerationID   string         `json:"generationId,omitempty"`
	Authentication *AuthMechanism `json:"authentication,omitempty"`
}

// WithModuleID returns a copy with the module id set.
func (m Module) WithModuleID(id string) Module {
	m.ModuleID = id
	return m
}

// WithManagedBy returns a copy with the managing entity set.
func (m Module) WithManagedBy(managedBy string) Module {
	m.ManagedBy = managedBy
	return m
}

// WithDeviceID returns a copy with the device id set.
func (m Module) WithDeviceID(id string) Module {
	m.DeviceID = id
	return m
}

// WithGenerationID returns a copy with the generation id set.
func (m Module) WithGenerationID(id string) Module {
	m.GenerationID = id
	return m
}

// WithAuthentication returns a copy with the authentication mechanism set.
func (m Module) WithAuthentication(auth AuthMechanism) Module {
	m.Authentication = &auth
	return m
}
