package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Database  Database  `envPrefix:"DB_"`
	JWT       JWT       `envPrefix:"JWT_"`
	Paypal    Paypal    `envPrefix:"PAYPAL_"`
	Braintree Braintree `envPrefix:"BRAINTREE_"`
}

type Database struct {
	// Driver selects the gorm driver: sqlite (default, dev) or mysql.
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"toko.db"`
}

type JWT struct {
	Secret string `env:"SECRET,required"`
}

type Paypal struct {
	BaseApiURL    string `env:"BASE_API_URL" envDefault:"https://api-m.sandbox.paypal.com"`
	ClientID      string `env:"CLIENT_ID"`
	ClientSecret  string `env:"CLIENT_SECRET"`
	ReceiverEmail string `env:"RECEIVER_EMAIL"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
