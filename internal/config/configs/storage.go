package configs

// Storage configures where rendered campaign images are written. The "s3"
// driver talks to any S3 compatible bucket (R2 included) through Endpoint;
// the "local" driver writes below LocalDir. Public URLs are always built as
// PublicDomain + "/" + key.
type Storage struct {
	Driver       string `env:"DRIVER" envDefault:"local"`
	Bucket       string `env:"BUCKET"`
	Region       string `env:"REGION" envDefault:"auto"`
	Endpoint     string `env:"ENDPOINT"`
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
	PublicDomain string `env:"PUBLIC_DOMAIN" envDefault:"http://localhost:8080/files"`
	LocalDir     string `env:"LOCAL_DIR" envDefault:"./uploads"`
}
