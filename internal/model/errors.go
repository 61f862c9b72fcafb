package model

import "errors"

// Domain rule failures. Services return these unwrapped (or wrapped with %w)
// so handlers can map each one to the right HTTP status and message.
// Storage failures are a separate family — see the store package.
var (
	// ErrCaixaFechado: the operation requires an open session for today.
	ErrCaixaFechado = errors.New("não há caixa aberto")
	// ErrCaixaJaAberto: a session for today is already open.
	ErrCaixaJaAberto = errors.New("já existe um caixa aberto hoje")
	// ErrVendaVazia: finalize called with no line items.
	ErrVendaVazia = errors.New("a venda não possui itens")
	// ErrPagamentoInsuficiente: cash tendered below the sale total.
	ErrPagamentoInsuficiente = errors.New("valor pago insuficiente")
	// ErrNaoEncontrado: referenced product, sale, client or session is absent.
	ErrNaoEncontrado = errors.New("registro não encontrado")
	// ErrVendaJaCancelada: the sale was already cancelled once.
	ErrVendaJaCancelada = errors.New("a venda já está cancelada")
)
