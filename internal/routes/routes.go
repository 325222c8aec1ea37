package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/backup"
	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/handlers"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
	ucAgendamento "github.com/BruksfildServices01/barbearia-api/internal/usecase/agendamento"
	ucVoucher "github.com/BruksfildServices01/barbearia-api/internal/usecase/voucher"
)

// Colecoes são os arquivos de dados cobertos pelo backup.
var Colecoes = []string{
	"usuarios.json",
	"clientes.json",
	"cortes.json",
	"agendamentos.json",
	"vouchers.json",
	"auditoria.json",
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// STORES (um arquivo JSON por coleção)
	// ======================================================
	usuarios := store.New[*models.Usuario](filepath.Join(cfg.DataDir, "usuarios.json"))
	clientes := store.New[*models.Cliente](filepath.Join(cfg.DataDir, "clientes.json"))
	cortes := store.New[*models.Corte](filepath.Join(cfg.DataDir, "cortes.json"))
	agendamentos := store.New[*models.Agendamento](filepath.Join(cfg.DataDir, "agendamentos.json"))
	vouchers := store.New[*models.Voucher](filepath.Join(cfg.DataDir, "vouchers.json"))
	auditoria := store.New[*models.RegistroAuditoria](filepath.Join(cfg.DataDir, "auditoria.json"))

	// ======================================================
	// INFRA
	// ======================================================
	auditLogger := audit.New(auditoria)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	backupManager := backup.NewManager(cfg.DataDir, cfg.BackupDir, cfg.BackupKeep, log)

	// ======================================================
	// USE CASES
	// ======================================================
	criarAgendamentoUC := ucAgendamento.NewCriar(agendamentos, vouchers, auditDispatcher, log)
	usarVoucherUC := ucVoucher.NewUsar(vouchers, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	usuarioHandler := handlers.NewUsuarioHandler(usuarios, auditDispatcher, cfg)
	clienteHandler := handlers.NewClienteHandler(clientes, auditDispatcher)
	corteHandler := handlers.NewCorteHandler(cortes, auditDispatcher)
	agendamentoHandler := handlers.NewAgendamentoHandler(agendamentos, criarAgendamentoUC, auditDispatcher)
	voucherHandler := handlers.NewVoucherHandler(vouchers, usarVoucherUC, auditDispatcher)
	relatorioHandler := handlers.NewRelatorioHandler(clientes, cortes, agendamentos, vouchers)
	backupHandler := handlers.NewBackupHandler(backupManager, Colecoes, auditDispatcher)
	auditoriaHandler := handlers.NewAuditoriaHandler(auditoria)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// USUÁRIOS / SESSÃO
		// ------------------------------
		usuariosAPI := api.Group("/usuarios")
		{
			usuariosAPI.GET("/", usuarioHandler.Listar)
			usuariosAPI.POST("/registrar", usuarioHandler.Registrar)
			usuariosAPI.POST("/login", usuarioHandler.Login)
			usuariosAPI.POST("/logout", middleware.RequireAuth(), usuarioHandler.Logout)
			usuariosAPI.PUT("/editar", middleware.RequireAuth(), usuarioHandler.EditarPerfil)
		}

		// ------------------------------
		// CLIENTES
		// ------------------------------
		clientesAPI := api.Group("/clientes")
		{
			clientesAPI.GET("/", clienteHandler.Listar)
			clientesAPI.POST("/", middleware.RequireAdmin(), clienteHandler.Criar)
			clientesAPI.PUT("/:id", middleware.RequireAdmin(), clienteHandler.Editar)
			clientesAPI.DELETE("/:id", middleware.RequireAdmin(), clienteHandler.Remover)
		}

		// ------------------------------
		// CORTES
		// ------------------------------
		cortesAPI := api.Group("/cortes")
		{
			cortesAPI.GET("/", corteHandler.Listar)
			cortesAPI.POST("/", middleware.RequireAdmin(), corteHandler.Criar)
			cortesAPI.PUT("/:id", middleware.RequireAdmin(), corteHandler.Editar)
			cortesAPI.DELETE("/:id", middleware.RequireAdmin(), corteHandler.Remover)
		}

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		agendamentosAPI := api.Group("/agendamentos")
		{
			agendamentosAPI.GET("/", agendamentoHandler.Listar)
			agendamentosAPI.POST("/", middleware.RequireAuth(), agendamentoHandler.Criar)
			agendamentosAPI.PUT("/:id", middleware.RequireAdmin(), agendamentoHandler.Editar)
			agendamentosAPI.DELETE("/:id", middleware.RequireAdmin(), agendamentoHandler.Remover)
		}

		// ------------------------------
		// VOUCHERS
		// ------------------------------
		vouchersAPI := api.Group("/vouchers")
		{
			vouchersAPI.GET("/", voucherHandler.Listar)
			vouchersAPI.GET("/meus-vouchers", middleware.RequireAuth(), voucherHandler.MeusVouchers)
			vouchersAPI.POST("/usar/:id", middleware.RequireAuth(), voucherHandler.Usar)
			vouchersAPI.POST("/", middleware.RequireAdmin(), voucherHandler.Criar)
			vouchersAPI.PUT("/:id", middleware.RequireAdmin(), voucherHandler.Editar)
			vouchersAPI.DELETE("/:id", middleware.RequireAdmin(), voucherHandler.Remover)
		}

		// ------------------------------
		// ADMINISTRAÇÃO
		// ------------------------------
		api.GET("/relatorios/", middleware.RequireAdmin(), relatorioHandler.Resumo)
		api.GET("/auditoria/", middleware.RequireAdmin(), auditoriaHandler.Listar)
		api.GET("/backups/", middleware.RequireAdmin(), backupHandler.Listar)
		api.POST("/backups/", middleware.RequireAdmin(), backupHandler.Criar)
	}
}
