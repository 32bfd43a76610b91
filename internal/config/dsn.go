package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DSNValue assembles the MySQL DSN from whichever fields are set. Returns
// "" when no database is configured, which selects the in-memory store.
func (c DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}
	if strings.TrimSpace(c.Host) == "" && strings.TrimSpace(c.Name) == "" {
		return ""
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := c.Port
	if port == 0 {
		port = 3306
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = "seva_core"
	}
	user := strings.TrimSpace(c.User)
	if user == "" {
		user = "root"
	}

	params := map[string]string{"charset": "utf8mb4"}
	for key, value := range c.Params {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			params[k] = v
		}
	}

	dsnCfg := mysql.Config{
		User:                 user,
		Passwd:               c.Password,
		Net:                  "tcp",
		Addr:                 net.JoinHostPort(host, strconv.Itoa(port)),
		DBName:               name,
		Params:               params,
		ParseTime:            true,
		AllowNativePasswords: true,
		Loc:                  time.UTC,
	}
	return dsnCfg.FormatDSN()
}
