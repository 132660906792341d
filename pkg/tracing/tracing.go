// Package tracing 基于OpenTelemetry的链路追踪
//
// 每个用例在Execute里用StartSpan开一个Span,出错时用EndSpan记录错误。
// 未启用追踪时全局Provider是otel默认的noop实现,StartSpan几乎没有开销。
//
// 使用示例:
//
//	ctx, span := tracing.StartSpan(ctx, "bookcart/order", "AddBook")
//	defer tracing.EndSpan(span, err)
//	span.SetAttributes(attribute.Int("book_id", int(id)))
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// ShutdownFunc 关闭Provider并刷新未发送的Span
type ShutdownFunc func(context.Context) error

// Options 追踪配置
type Options struct {
	ServiceName string
	Endpoint    string  // OTLP gRPC端点,如localhost:4317
	SampleRate  float64 // 0~1,1表示全部采样
}

// InitTracer 初始化全局Tracer Provider(OTLP gRPC exporter)
//
// 设计要点:
// 1. 使用OTLP协议,Jaeger/Tempo等都能接收
// 2. 按TraceID比例采样,父Span已采样时子Span跟随
// 3. BatchSpanProcessor批量发送,程序退出前必须调用返回的ShutdownFunc
func InitTracer(opts Options) (ShutdownFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(opts.Endpoint),
		otlptracegrpc.WithInsecure(), // 禁用TLS(生产环境应启用)
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	return install(exporter, opts)
}

// install 用给定exporter构建Provider并设为全局
func install(exporter sdktrace.SpanExporter, opts Options) (ShutdownFunc, error) {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(semconv.ServiceName(opts.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRate))),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}, nil
}

// StartSpan 创建一个新的Span
// 必须使用返回的ctx调用下游函数,否则无法构建调用树
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName)
}

// EndSpan 记录错误(如有)并结束Span
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ExtractTraceID 从Context提取TraceID(用于关联日志)
func ExtractTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// ExtractSpanID 从Context提取SpanID
func ExtractSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().SpanID().String()
}
