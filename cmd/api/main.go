package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hrms-backend-go/internal/handler/http"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/storage"
	"github.com/peoplecore/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplecore/hrms-backend-go/internal/service/attendance"
	authService "github.com/peoplecore/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/peoplecore/hrms-backend-go/internal/service/dashboard"
	documentService "github.com/peoplecore/hrms-backend-go/internal/service/document"
	employeeService "github.com/peoplecore/hrms-backend-go/internal/service/employee"
	"github.com/peoplecore/hrms-backend-go/internal/service/file"
	importExportService "github.com/peoplecore/hrms-backend-go/internal/service/importexport"
	leaveService "github.com/peoplecore/hrms-backend-go/internal/service/leave"
	"github.com/peoplecore/hrms-backend-go/internal/service/master"
	performanceService "github.com/peoplecore/hrms-backend-go/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reviewRepo := postgresql.NewPerformanceReviewRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	documentRepo := postgresql.NewEmployeeDocumentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	masterSvc := master.NewMasterService(departmentRepo, positionRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileSvc)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(reviewRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo, fileSvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	importExportSvc := importExportService.NewImportExportService(db, employeeRepo, departmentRepo, positionRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Performance:  appHTTP.NewPerformanceHandler(performanceSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		ImportExport: appHTTP.NewImportExportHandler(importExportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
