package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
}

type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

type LogConfig struct {
	LogPath string `toml:"logPath"`
}

type JwtConfig struct {
	Key         string `toml:"key"`
	ExpireHours int    `toml:"expireHours"`
	Issuer      string `toml:"issuer"`
}

type RedisConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Password     string `toml:"password"`
	DB           int    `toml:"db"`
	PoolSize     int    `toml:"poolSize"`
	MinIdleConns int    `toml:"minIdleConns"`
}

type EmailConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type KafkaConfig struct {
	Enabled     bool     `toml:"enabled"`
	Brokers     []string `toml:"brokers"`
	ClientID    string   `toml:"clientID"`
	EventTopic  string   `toml:"eventTopic"`
	Partitions  int32    `toml:"partitions"`
	Replication int16    `toml:"replication"`
}

// ComplianceConfig 到期扫描任务配置
// warningDays 为进程级只读配置，运行期修改需要重启
// 多实例部署时只允许一个实例 enabled=true，否则会重复发送提醒
type ComplianceConfig struct {
	Enabled           bool   `toml:"enabled"`
	ScanCron          string `toml:"scanCron"`
	WarningDays       []int  `toml:"warningDays"`
	WarningWindowDays int    `toml:"warningWindowDays"`
	Timezone          string `toml:"timezone"`
}

type Config struct {
	MainConfig       `toml:"mainConfig"`
	MysqlConfig      `toml:"mysqlConfig"`
	JwtConfig        `toml:"jwtConfig"`
	LogConfig        `toml:"logConfig"`
	RedisConfig      `toml:"redisConfig"`
	EmailConfig      `toml:"emailConfig"`
	KafkaConfig      `toml:"kafkaConfig"`
	ComplianceConfig `toml:"complianceConfig"`
}

var config *Config

func LoadConfig() error {
	configPath := "configs/config_local.toml"
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Printf("加载配置文件失败: %v, 尝试使用默认设置", err)
		return err
	}
	return nil
}

func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
		applyDefaults(config)
	}
	return config
}

func applyDefaults(c *Config) {
	if len(c.ComplianceConfig.WarningDays) == 0 {
		c.ComplianceConfig.WarningDays = []int{30, 14, 7, 1}
	}
	if c.ComplianceConfig.WarningWindowDays <= 0 {
		c.ComplianceConfig.WarningWindowDays = 30
	}
	if c.ComplianceConfig.ScanCron == "" {
		// 每天早上 9 点执行
		c.ComplianceConfig.ScanCron = "0 9 * * *"
	}
}
