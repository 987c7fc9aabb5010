package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/config"
	appHTTP "github.com/worklog-hq/worklog-backend-go/internal/handler/http"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/audit"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/jwt"
	"github.com/worklog-hq/worklog-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklog-hq/worklog-backend-go/internal/service/attendance"
	incomeService "github.com/worklog-hq/worklog-backend-go/internal/service/income"
	overtimeService "github.com/worklog-hq/worklog-backend-go/internal/service/overtime"
	reportService "github.com/worklog-hq/worklog-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE:", err)
	}

	rules, err := attendanceService.NewRules(cfg.Workday, location)
	if err != nil {
		log.Fatal("Invalid workday configuration:", err)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	commissionRepo := postgresql.NewCommissionRepository(db)
	incomeRepo := postgresql.NewIncomeRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	txRunner := postgresql.NewTxRunner(db)
	recorder := audit.NewPostgresRecorder(db, slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(txRunner, attendanceRepo, breakRepo, rules, recorder)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, location, recorder)
	reportSvc := reportService.NewReportService(reportRepo)
	incomeSvc := incomeService.NewIncomeService(txRunner, commissionRepo, incomeRepo, recorder)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	incomeHandler := appHTTP.NewIncomeHandler(incomeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		overtimeHandler,
		reportHandler,
		incomeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
