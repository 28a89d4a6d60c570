package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/cron"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/attendly/attendance-backend-go/internal/service/auth"
	deleteRequestService "github.com/attendly/attendance-backend-go/internal/service/deleterequest"
	meetingService "github.com/attendly/attendance-backend-go/internal/service/meeting"
	memberService "github.com/attendly/attendance-backend-go/internal/service/member"
	verticalHeadService "github.com/attendly/attendance-backend-go/internal/service/verticalhead"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	meetingRepo := postgresql.NewMeetingRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	deleteRequestRepo := postgresql.NewDeleteRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	verticalLeadSvc := verticalHeadService.NewVerticalLeadService(userRepo)
	memberSvc := memberService.NewMemberService(memberRepo)
	meetingSvc := meetingService.NewMeetingService(meetingRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, meetingSvc, memberRepo, meetingRepo)
	deleteRequestSvc := deleteRequestService.NewDeleteRequestService(db, deleteRequestRepo, memberSvc)

	handlers := appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(JWTService, authSvc),
		VerticalHead:  appHTTP.NewVerticalHeadHandler(verticalLeadSvc),
		Member:        appHTTP.NewMemberHandler(memberSvc),
		Meeting:       appHTTP.NewMeetingHandler(meetingSvc),
		Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc, cfg.Report.DefaultThreshold),
		DeleteRequest: appHTTP.NewDeleteRequestHandler(deleteRequestSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	scheduler := cron.NewScheduler()
	scheduler.Register(cron.SessionSweepJob(JWTService))
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
