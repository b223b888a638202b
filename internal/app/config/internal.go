package config

import "time"

const (
	UploadBackendLocal = "local"
	UploadBackendMinio = "minio"
)

type InternalConfig struct {
	App    App
	Upload Upload
	Cache  Cache
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type Upload struct {
	Backend     string
	Dir         string
	MaxSizeInMB int64
}

type Cache struct {
	PatientTTLInSeconds int
}

func (a App) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}

func (u Upload) MaxSizeInBytes() int64 {
	return u.MaxSizeInMB << 20
}

func (c Cache) PatientTTL() time.Duration {
	return time.Duration(c.PatientTTLInSeconds) * time.Second
}
