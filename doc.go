// Package blendkit 是一个双种子混搭推荐引擎（Blend Kit）。
//
// 给定两部种子影片和一个平衡参数 alpha，从只读目录中找出同时
// 照顾双方口味的第三方影片，输出确定性排序的结果与逐条理由。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Filter → Rank → ReRank → PostProcess）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - Node 可扩展: 自定义 Node 即可插拔扩展（召回源、过滤规则、打分策略均可替换）
package blendkit

import "github.com/rushteam/blendkit/pipeline"

// 轻量 facade：便于用户直接 import "blendkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindFeature     = pipeline.KindFeature
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
