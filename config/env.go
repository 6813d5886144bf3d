package config

import (
	"log"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/lib"
	"github.com/Carehealth1/jcindex/model"
	"github.com/Carehealth1/jcindex/resource/memory"
	"github.com/Carehealth1/jcindex/resource/rds"
)

const (
	// dataBasePath 設定ファイルのベースパス。
	dataBasePath = "data/config"
)

var appConfig *configuration

// configuration アプリケーション設定
//  `.env.{SERVER_ENV}` ファイルに含まれる設定値を取得し管理する
type configuration struct {
	Server ServerConfiguration
	Store  StoreConfiguration
	DB     lib.DatabaseConfiguration
	ReadDB lib.DatabaseConfiguration
	Lang   lib.LanguageConfiguration
}

// ServerConfig サーバ設定情報。
type ServerConfiguration struct {
	Port       string
	Dump       bool
	ApiVersion string `envconfig:"API_VERSION"`
}

// StoreConfiguration 計測記録ストアの設定。memoryまたはdatabase。
type StoreConfiguration struct {
	Backend string
}

func SetupAll() {
	if appConfig == nil {
		env := strings.ToLower(os.Getenv("SERVER_ENV"))
		if len(env) == 0 {
			env = "test"
		}

		root := os.Getenv("SERVER_ROOT")
		if len(root) == 0 {
			// 未設定の場合はリポジトリルートを使用する。
			_, file, _, _ := runtime.Caller(0)
			root = path.Dir(path.Dir(file))
			os.Setenv("SERVER_ROOT", root)
		}

		paths := []string{path.Join(root, dataBasePath, ".env."+env)}
		if env != "test" {
			paths = append(paths, path.Join(root, dataBasePath, ".env.local"))
		} else {
			paths = append(paths, path.Join(root, dataBasePath, ".env.local.test"))
		}
		if err := godotenv.Load(paths...); err != nil {
			log.Fatalf("Failed to load %v: %v\n", paths, err)
		}

		load := func(prefix string, config interface{}) {
			err := envconfig.Process(prefix, config)
			if err != nil {
				log.Printf("An error occured during loading %#v\n", err)
			}
		}

		appConfig = &configuration{}
		load("server", &appConfig.Server)
		load("store", &appConfig.Store)
		load("db", &appConfig.DB)
		load("read_db", &appConfig.ReadDB)
		load("lang", &appConfig.Lang)

		if env != "test" {
			log.Println(&appConfig.DB)
			log.Println(&appConfig.ReadDB)
		}

		var store model.MeasurementStore

		switch C.StoreBackend(appConfig.Store.Backend) {
		case C.StoreBackendMemory:
			store = memory.NewStore()
		default:
			// Read/Write用DBの設定
			if err := lib.SetupDatabase(lib.WriteDBKey, &appConfig.DB); err != nil {
				log.Fatalf("Failed to setup default database %v\n", err.Error())
			}
			if err := lib.SetupDatabase(lib.ReadDBKey, &appConfig.ReadDB); err != nil {
				log.Fatalf("Failed to setup read database %v\n", err.Error())
			}

			model.SetupModels(lib.GetDB(lib.WriteDBKey))
			model.SetupModels(lib.GetDB(lib.ReadDBKey))

			store = rds.NewStore(lib.GetDB(lib.WriteDBKey), lib.GetDB(lib.ReadDBKey))
		}

		// ストアの登録とスキーマの初期化。初期化は冪等。
		if err := lib.SetupStore(store); err != nil {
			log.Fatalf("Failed to setup measurement store %v\n", err.Error())
		}

		lib.SetupI18n(&appConfig.Lang)

		setLogger()
	}
}

func setLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.DebugLevel)
}

func ServerConfig() *ServerConfiguration {
	return &appConfig.Server
}

func StoreConfig() *StoreConfiguration {
	return &appConfig.Store
}
