package main

import (
	"fmt"
	"net/http"

	"github.com/staffhive/staffhive-backend-go/internal/config"
	appHTTP "github.com/staffhive/staffhive-backend-go/internal/handler/http"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/jwt"
	"github.com/staffhive/staffhive-backend-go/internal/repository/postgresql"
	authService "github.com/staffhive/staffhive-backend-go/internal/service/auth"
	clientService "github.com/staffhive/staffhive-backend-go/internal/service/client"
	dashboardService "github.com/staffhive/staffhive-backend-go/internal/service/dashboard"
	employeeService "github.com/staffhive/staffhive-backend-go/internal/service/employee"
	exportService "github.com/staffhive/staffhive-backend-go/internal/service/export"
	invoiceService "github.com/staffhive/staffhive-backend-go/internal/service/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/service/master"
	payrollService "github.com/staffhive/staffhive-backend-go/internal/service/payroll"
	periodService "github.com/staffhive/staffhive-backend-go/internal/service/period"
	timeoffService "github.com/staffhive/staffhive-backend-go/internal/service/timeoff"
	timesheetService "github.com/staffhive/staffhive-backend-go/internal/service/timesheet"
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
	clientRepo := postgresql.NewClientRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	pricingRepo := postgresql.NewPricingRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	workEntryRepo := postgresql.NewWorkEntryRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	clientSvc := clientService.NewClientService(clientRepo)
	masterSvc := master.NewMasterService(roleRepo, pricingRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clientRepo, roleRepo)
	periodSvc := periodService.NewPeriodService(periodRepo, payrollRepo)
	timesheetSvc := timesheetService.NewTimesheetService(workEntryRepo, periodRepo, employeeRepo)
	timeOffSvc := timeoffService.NewTimeOffService(timeOffRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, periodRepo, employeeRepo, workEntryRepo)
	invoiceSvc := invoiceService.NewInvoiceService(db, invoiceRepo, clientRepo, periodRepo, employeeRepo, pricingRepo, workEntryRepo)
	exportSvc := exportService.NewExportService(db, payrollRepo, invoiceRepo, periodRepo, auditRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Client:    appHTTP.NewClientHandler(clientSvc, masterSvc),
		Master:    appHTTP.NewMasterHandler(masterSvc),
		Period:    appHTTP.NewPeriodHandler(periodSvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc),
		TimeOff:   appHTTP.NewTimeOffHandler(timeOffSvc),
		Payroll:   appHTTP.NewPayrollHandler(payrollSvc, exportSvc),
		Invoice:   appHTTP.NewInvoiceHandler(invoiceSvc, exportSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
