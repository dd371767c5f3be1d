package initializers

import (
	"context"

	"ppalink-backend/config"
	"ppalink-backend/fiberlog"
	agencyhandler "ppalink-backend/lib/agency"
	applicationhandler "ppalink-backend/lib/application"
	authhandler "ppalink-backend/lib/auth"
	candidatehandler "ppalink-backend/lib/candidate"
	emailverifyhandler "ppalink-backend/lib/email-verify"
	xlsexport "ppalink-backend/lib/export/xls"
	filestorage "ppalink-backend/lib/file-storage"
	gpthandler "ppalink-backend/lib/gpt"
	interviewhandler "ppalink-backend/lib/interview"
	messagehandler "ppalink-backend/lib/message"
	notificationhandler "ppalink-backend/lib/notification"
	positionhandler "ppalink-backend/lib/position"
	"ppalink-backend/lib/presence"
	connectionhub "ppalink-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()

	// реестр присутствия и хаб живых соединений, от них зависят уведомления
	presence.Init()
	connectionhub.Init(presence.Instance)

	filestorage.NewHandler()
	xlsexport.NewHandler()
	emailverifyhandler.NewHandler()
	authhandler.NewHandler()
	candidatehandler.NewHandler()
	agencyhandler.NewHandler()
	positionhandler.NewHandler()
	gpthandler.NewHandler()
	notificationhandler.NewHandler(presence.Instance)
	applicationhandler.NewHandler()
	interviewhandler.NewHandler()
	messagehandler.NewHandler()
}
