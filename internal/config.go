package internal

import "time"

type Config struct {
	HTTPAddr             string        `env:"HTTP_ADDR,required=true"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`
	ReadHeaderTimeout    time.Duration `env:"READ_HEADER_TIMEOUT,required=true"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
}
