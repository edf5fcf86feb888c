package config

import (
	"os"
	"path/filepath"

	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/spf13/viper"
)

func setDefaultConfig() {
	viper.SetDefault("Data.LogConfig.EnableConsole", true)
	viper.SetDefault("Data.LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("Data.LogConfig.ConsoleLevel", "info")
	viper.SetDefault("Data.LogConfig.EnableFile", false)
	viper.SetDefault("Data.LogConfig.FileJSONFormat", true)
	viper.SetDefault("Data.LogConfig.FileLevel", "debug")
	viper.SetDefault("Data.LogConfig.FileLocation", "./statusbridge.log")
	viper.SetDefault("Data.LogFile", "")
	viper.SetDefault("Data.LogBackend", lumber.BackendZap)
	viper.SetDefault("Data.Env", constants.Prod)
	viper.SetDefault("Data.Port", "9876")
	viper.SetDefault("Data.Verbose", false)
	viper.SetDefault("Data.GitHub.APIURL", constants.DefaultGitHubAPIURL)
	viper.SetDefault("Data.GitHub.StatusContext", "")
	viper.SetDefault("Data.GitHub.TokenNote", constants.DefaultTokenNote)
	viper.SetDefault("Data.Credentials.Backend", constants.BackendFile)
	viper.SetDefault("Data.Credentials.Path", defaultCredentialsPath())
	viper.SetDefault("Data.Credentials.VaultPath", constants.DefaultVaultSecretPath)
	viper.SetDefault("Data.Credentials.RedisKey", constants.DefaultRedisKey)
	viper.SetDefault("Data.Vault.Address", "")
	viper.SetDefault("Data.Vault.Token", "")
	viper.SetDefault("Data.Vault.Namespace", "")
	viper.SetDefault("Data.Redis.Addr", "")
	viper.SetDefault("Data.Redis.Username", "")
	viper.SetDefault("Data.Redis.Password", "")
	viper.SetDefault("Data.Redis.TLS", false)
	viper.SetDefault("Data.RequestTimeout", constants.DefaultRequestTimeout)
	viper.SetDefault("Data.GracefulTimeout", constants.DefaultGracefulTimeout)
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", constants.CredentialsFileName)
	}
	return filepath.Join(home, constants.ConfigDirName, constants.CredentialsFileName)
}
