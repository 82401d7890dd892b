package main

import (
	"gridEditor/contracts"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Logger             *logrus.Logger
	Database           *bbolt.DB
	SnapshotRepository contracts.SnapshotRepository
	FormulaEvaluator   contracts.FormulaEvaluator
	GridEditor         contracts.GridEditor
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(config Config) (container ServiceContainer, err error) {
	if err = config.Validate(); err != nil {
		return
	}

	container.Logger = NewLogger(config.LogLevel)

	container.Database, err = bbolt.Open(config.DatabasePath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return
	}

	serializer := NewGridJsonSerializer()

	container.SnapshotRepository = NewSnapshotRepository(container.Database)
	container.FormulaEvaluator = NewFormulaEvaluator(NewReferenceParser(), NewDefaultFunctionRegistry())
	container.GridEditor = NewGridEditor(
		NewGrid(config.Rows, config.Cols),
		NewHistoryManager(serializer, config.HistoryLimit),
		container.FormulaEvaluator,
		serializer,
		container.SnapshotRepository,
		NewXlsxExporter(),
		container.Logger,
	)
	container.ApiController = NewApiController(container.GridEditor)

	container.Router = SetupRouter(container.ApiController, container.Logger)

	return
}

func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}

	return logger
}
