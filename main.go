package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	bitmarksdk "github.com/bitmark-inc/bitmark-sdk-go"
	"github.com/bitmark-inc/bitmark-sdk-go/account"

	"github.com/tsnevan4204/health-app-sub000/api"
	"github.com/tsnevan4204/health-app-sub000/external/blobstore"
	"github.com/tsnevan4204/health-app-sub000/external/healthdata"
	"github.com/tsnevan4204/health-app-sub000/external/ledger"
	"github.com/tsnevan4204/health-app-sub000/manifest"
	"github.com/tsnevan4204/health-app-sub000/pipeline"
	"github.com/tsnevan4204/health-app-sub000/store"
	"github.com/tsnevan4204/health-app-sub000/utils"
)

var (
	server *api.Server
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("fitmint")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	var fitmintStore store.FitmintStore

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if fitmintStore != nil {
			log.Info("Shutting down db store")
			fitmintStore.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Init Bitmark SDK
	bitmarksdk.Init(&bitmarksdk.Config{
		Network:    bitmarksdk.Network(viper.GetString("bitmarksdk.network")),
		APIToken:   viper.GetString("bitmarksdk.token"),
		HTTPClient: httpClient,
	})
	log.WithField("prefix", "init").Info("Initialized bitmark sdk")

	// Load global bitmark account
	a, err := account.FromSeed(viper.GetString("account.seed"))
	if err != nil {
		log.Panic(err)
	}
	globalAccount := a.(*account.AccountV2)
	log.WithField("prefix", "init").Info("Global account: ", globalAccount.AccountNumber())
	log.WithField("prefix", "init").Info("Global enc pub key: ", hex.EncodeToString(globalAccount.EncrKey.PublicKeyBytes()))

	// Load JWT private key
	jwtSecretByte, err := ioutil.ReadFile(viper.GetString("jwt.keyfile"))
	if err != nil {
		log.Panic(err)
	}
	jwtPrivateKey, err := jwt.ParseRSAPrivateKeyFromPEMWithPassword(jwtSecretByte, viper.GetString("jwt.password"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded global jwt key")

	// Load localized messages
	utils.InitI18NBundle()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	fitmintStore = store.NewFitmintStore(mongoClient, viper.GetString("mongo.database"))
	log.WithField("prefix", "init").Info("Initialized mongodb store")

	// Blob store for anonymized health payloads and manifests
	blobStore, err := blobstore.New(
		viper.GetString("blobstore.endpoint"),
		viper.GetString("blobstore.access_key"),
		viper.GetString("blobstore.secret_key"),
		viper.GetString("blobstore.bucket"),
		viper.GetBool("blobstore.secure"),
	)
	if err != nil {
		log.Panicf("create blob store client with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Initialized blob store")

	// gin serves requests concurrently and this generator is shared by the
	// uploader, the manifest builder, the synthetic source and the minter
	rng := utils.NewLockedRand(time.Now().UnixNano())

	// Health data source. Demo deployments run fully synthetic.
	var healthSource healthdata.Source
	if viper.GetBool("healthdata.synthetic") || viper.GetString("healthdata.endpoint") == "" {
		healthSource = healthdata.NewSynthetic(rng)
		log.WithField("prefix", "init").Info("Using synthetic health data source")
	} else {
		healthSource = healthdata.New(
			viper.GetString("healthdata.endpoint"),
			viper.GetString("healthdata.token"),
			httpClient)
	}

	// Token minter
	var minter ledger.Minter
	if viper.GetString("ledger.provider") == "remote" {
		minter = ledger.New(viper.GetString("ledger.endpoint"), globalAccount, httpClient)
	} else {
		minter = ledger.NewSimulated(rng)
		log.WithField("prefix", "init").Info("Using simulated minting")
	}

	uploader := pipeline.NewUploader(
		healthSource,
		blobStore,
		manifest.NewBuilder(nil, rng),
		rng)

	// Init http server
	server = api.NewServer(
		fitmintStore,
		blobStore,
		healthSource,
		minter,
		uploader,
		jwtPrivateKey,
		globalAccount,
		rng)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
