package notify

// Config holds configuration for the unmatched-SKU notification email.
type Config struct {
	// Host is the SMTP server host.
	Host string `mapstructure:"host" default:"smtp.gmail.com"`
	// Port is the SMTP server port.
	Port int `mapstructure:"port" default:"587"`
	// Username is the SMTP account the mail is sent from.
	Username string `mapstructure:"username" default:""`
	// Password is the SMTP account password.
	Password string `mapstructure:"password" default:""`
	// To is the operator address that receives the report.
	To string `mapstructure:"to" default:""`
	// FromName is the display name on the sender address.
	FromName string `mapstructure:"from_name" default:"Inventory Sync"`
}
