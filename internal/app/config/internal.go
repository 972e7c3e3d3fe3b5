package config

type InternalConfig struct {
	App      App
	Auth0    AppAuth0
	Calendar AppCalendar
	Chat     AppChat
	RabbitMQ AppRabbitMQ
	Minio    AppMinio
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	AllowedOrigins             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type AppAuth0 struct {
	Domain      string
	APIAudience string
	// Algorithms is a comma separated list, e.g. "RS256".
	Algorithms             string
	PublicKeyPEM           string
	JWKSCacheTTLInMinutes  int
	JWKSFetchTimeoutInSecs int
}

type AppCalendar struct {
	CalendarID      string
	Timezone        string
	CredentialsFile string
	TokenStore      string
	TokenFile       string
	TokenRedisKey   string
	TokenObject     string
	// BaseURL overrides the Google API endpoint when set.
	BaseURL string
}

type AppChat struct {
	IdleTimeoutInSeconds  int
	MaxMessageSizeInBytes int
	MaxMessagesPerSecond  int
}

type AppRabbitMQ struct {
	AppointmentQueue string
}

type AppMinio struct {
	BucketName string
}
