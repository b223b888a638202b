package config

type DriverConfig struct {
	MongoDB MongoDB
	Redis   Redis
	Logger  Logger
	Minio   Minio
}

// MongoDB connects through URI when it is set, otherwise through Host and Port.
type MongoDB struct {
	URI                     string
	Port                    string
	Host                    string
	DbName                  string
	Username                string
	Password                string
	ConnectTimeoutInSeconds int
}

type Redis struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type Minio struct {
	Port       string
	Host       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}
